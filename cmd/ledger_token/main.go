// Command ledger_token issues bearer tokens for the ledger API and generates
// PII encryption keys. It reads JWT_SECRET and JWT_ISSUER the same way the
// server does.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/customer_ledger_api/internal/middleware"
	"github.com/SscSPs/customer_ledger_api/internal/platform/config"
	"github.com/SscSPs/customer_ledger_api/internal/utils"
	"github.com/SscSPs/customer_ledger_api/internal/utils/pii"
)

func main() {
	customerID := flag.String("customer", "", "customer id the token may act on")
	admin := flag.Bool("admin", false, "issue an admin token that may act on every customer")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	genKey := flag.Bool("gen-pii-key", false, "print a new random PII_ENCRYPTION_KEY and exit")
	flag.Parse()

	if *genKey {
		key, err := pii.GenerateKey()
		if err != nil {
			fail(err)
		}
		fmt.Println(key)
		return
	}

	jwtSecret, jwtIssuer := config.LoadAuthConfig()
	if jwtSecret == "" {
		fail(fmt.Errorf("JWT_SECRET is not set"))
	}

	subject, scope := *customerID, ""
	if *admin {
		scope = middleware.AdminScope
		if subject == "" {
			subject = "admin"
		}
	}
	if subject == "" {
		flag.Usage()
		os.Exit(2)
	}

	token, err := utils.GenerateJWT(subject, scope, jwtSecret, *ttl, jwtIssuer)
	if err != nil {
		fail(err)
	}
	fmt.Println(token)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "ledger_token:", err)
	os.Exit(1)
}
