package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `id, first_name, last_name, phone_number, email, ssn, active, created_at`

// FieldCipher seals individual column values.
type FieldCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// PgxCustomerRepository stores customers. With a cipher configured the phone
// number, email and SSN columns hold ciphertext.
type PgxCustomerRepository struct {
	BaseRepository
	cipher FieldCipher
}

func newPgxCustomerRepository(pool *pgxpool.Pool, cipher FieldCipher) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}, cipher: cipher}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) seal(c domain.Customer) (domain.Customer, error) {
	if r.cipher == nil {
		return c, nil
	}
	for _, field := range []*string{&c.PhoneNumber, &c.Email, &c.SSN} {
		sealed, err := r.cipher.Encrypt(*field)
		if err != nil {
			return c, fmt.Errorf("failed to encrypt customer field: %w", err)
		}
		*field = sealed
	}
	return c, nil
}

func (r *PgxCustomerRepository) open(c *domain.Customer) error {
	if r.cipher == nil {
		return nil
	}
	for _, field := range []*string{&c.PhoneNumber, &c.Email, &c.SSN} {
		plain, err := r.cipher.Decrypt(*field)
		if err != nil {
			return fmt.Errorf("failed to decrypt customer %d: %w", c.CustomerID, err)
		}
		*field = plain
	}
	return nil
}

func (r *PgxCustomerRepository) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Email, &c.SSN, &c.Active, &c.CreatedAt); err != nil {
		return nil, err
	}
	if err := r.open(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// SaveCustomer inserts a new customer and returns it with its assigned id.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	sealed, err := r.seal(customer)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO customers (first_name, last_name, phone_number, email, ssn, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at;
	`
	err = r.Pool.QueryRow(ctx, query,
		sealed.FirstName, sealed.LastName, sealed.PhoneNumber, sealed.Email, sealed.SSN, sealed.Active,
	).Scan(&customer.CustomerID, &customer.CreatedAt)
	if err != nil {
		return nil, mapPgError(err, "failed to save customer")
	}
	return &customer, nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1;`
	c, err := r.scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customerID)
		}
		return nil, fmt.Errorf("failed to find customer %d: %w", customerID, err)
	}
	return c, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := r.scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	sealed, err := r.seal(customer)
	if err != nil {
		return err
	}
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, phone_number = $4, email = $5, ssn = $6, active = $7
		WHERE id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		sealed.CustomerID, sealed.FirstName, sealed.LastName, sealed.PhoneNumber, sealed.Email, sealed.SSN, sealed.Active,
	)
	if err != nil {
		return mapPgError(err, fmt.Sprintf("failed to update customer %d", customer.CustomerID))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customer.CustomerID)
	}
	return nil
}
