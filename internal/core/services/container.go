package services

import (
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/customer_ledger_api/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_api/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, tracker EventTracker) *portssvc.ServiceContainer {
	transferOpts := []TransferOption{
		WithRetryPolicy(cfg.TransferMaxRetries, cfg.TransferRetryBackoff),
	}
	if tracker != nil {
		transferOpts = append(transferOpts, WithEventTracker(tracker))
	}

	return &portssvc.ServiceContainer{
		Customer: NewCustomerService(repos.CustomerRepo),
		Account:  NewAccountService(repos.AccountRepo, repos.CustomerRepo),
		Ledger:   NewLedgerService(repos.AccountRepo, repos.LedgerRepo, repos.TxManager),
		Transfer: NewTransferService(repos, transferOpts...),
	}
}
