// Package seed creates the dashboard dataset schema in a SQLite database
// and fills it with deterministic synthetic pulse data, so the service can
// run end-to-end without the production store.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
)

// Seeder generates the synthetic datasets.
type Seeder struct {
	fromYear int
	toYear   int
	seed     int64
}

// Option applies a configuration option to the Seeder.
type Option func(*Seeder)

// WithYears sets the inclusive year range to generate.
func WithYears(from, to int) Option {
	return func(s *Seeder) {
		if from > 0 && to >= from {
			s.fromYear = from
			s.toYear = to
		}
	}
}

// WithSeed sets the RNG seed; the same seed always produces the same data.
func WithSeed(seed int64) Option {
	return func(s *Seeder) {
		s.seed = seed
	}
}

// New creates a Seeder with default configuration.
func New(opts ...Option) *Seeder {
	s := &Seeder{
		fromYear: 2019,
		toYear:   2024,
		seed:     1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS aggregated_transaction_state (
		state TEXT, year INTEGER, quarter INTEGER, type_of_transaction TEXT,
		total_amount REAL, number_of_transactions INTEGER)`,
	`CREATE TABLE IF NOT EXISTS agregated_transaction_country (
		year INTEGER, quarter INTEGER, type_of_transaction TEXT,
		amount REAL, count INTEGER)`,
	`CREATE TABLE IF NOT EXISTS aggregated_insurence_state (
		state TEXT, year INTEGER, quarter INTEGER,
		total_amount REAL, number_of_transactions INTEGER)`,
	`CREATE TABLE IF NOT EXISTS aggregated_insurence_country (
		year INTEGER, quarter INTEGER, amount REAL, count INTEGER)`,
	`CREATE TABLE IF NOT EXISTS agregated_user_state (
		state TEXT, year INTEGER, quarter INTEGER, phone_brand TEXT,
		phone_count INTEGER, registered_users INTEGER)`,
	`CREATE TABLE IF NOT EXISTS aggregated_user_counry (
		year INTEGER, quarter INTEGER, phone_count INTEGER,
		registered_users INTEGER)`,
	`CREATE TABLE IF NOT EXISTS map_transaction_hover_state (
		state TEXT, year INTEGER, quarter INTEGER,
		total_transactions_count INTEGER, total_transactions_amount REAL)`,
	`CREATE TABLE IF NOT EXISTS map_insurence_hover_state (
		state TEXT, year INTEGER, quarter INTEGER,
		total_transactions_count INTEGER, total_transactions_amount REAL)`,
	`CREATE TABLE IF NOT EXISTS map_user_hover_state (
		state TEXT, year INTEGER, quarter INTEGER, registered_users INTEGER)`,
	`CREATE TABLE IF NOT EXISTS top_transaction_country (
		entity_name TEXT, entity_type TEXT, year INTEGER, quarter INTEGER,
		amount REAL, count INTEGER)`,
	`CREATE TABLE IF NOT EXISTS top_insurence_country (
		entity_name TEXT, entity_type TEXT, year INTEGER, quarter INTEGER,
		amount REAL, count INTEGER)`,
	`CREATE TABLE IF NOT EXISTS top_user_country (
		entity_name TEXT, entity_type TEXT, year INTEGER, quarter INTEGER,
		registeredUsers INTEGER, count INTEGER)`,
	`CREATE TABLE IF NOT EXISTS top_transaction_state (
		state TEXT, entity_name TEXT, entity_type TEXT, year INTEGER,
		quarter INTEGER, amount REAL, count INTEGER)`,
	`CREATE TABLE IF NOT EXISTS top_insurance_state (
		state TEXT, entity_name TEXT, entity_type TEXT, year INTEGER,
		quarter INTEGER, amount REAL, count INTEGER)`,
	`CREATE TABLE IF NOT EXISTS top_user_state (
		state TEXT, entity_name TEXT, entity_type TEXT, year INTEGER,
		quarter INTEGER, registeredUsers INTEGER, count INTEGER)`,
}

// Run creates the schema and inserts the synthetic rows in one transaction.
func (s *Seeder) Run(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	rng := rand.New(rand.NewSource(s.seed))
	if err := s.fill(ctx, tx, rng); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}

// fill walks every (year, quarter) period once and emits rows for each
// dataset. Amounts grow year over year so the growth metrics have signal.
func (s *Seeder) fill(ctx context.Context, tx *sql.Tx, rng *rand.Rand) error {
	for year := s.fromYear; year <= s.toYear; year++ {
		growth := 1.0 + 0.35*float64(year-s.fromYear)
		for quarter := 1; quarter <= 4; quarter++ {
			if err := s.fillPeriod(ctx, tx, rng, year, quarter, growth); err != nil {
				return fmt.Errorf("seed %d-Q%d: %w", year, quarter, err)
			}
		}
	}
	return nil
}

func (s *Seeder) fillPeriod(ctx context.Context, tx *sql.Tx, rng *rand.Rand, year, quarter int, growth float64) error {
	var countryAmount, countryUsers float64
	var countryCount int

	for _, state := range stateSlugs {
		base := (1 + rng.Float64()*9) * 1e7 * growth
		txnCount := 1000 + rng.Intn(900_000)
		countryAmount += base
		countryCount += txnCount

		for _, txnType := range transactionTypes {
			share := 0.05 + rng.Float64()*0.3
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO aggregated_transaction_state VALUES (?, ?, ?, ?, ?, ?)`,
				state, year, quarter, txnType, base*share, int(float64(txnCount)*share),
			); err != nil {
				return err
			}
		}

		insAmount := base * (0.02 + rng.Float64()*0.05)
		insCount := 1 + txnCount/200
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO aggregated_insurence_state VALUES (?, ?, ?, ?, ?)`,
			state, year, quarter, insAmount, insCount,
		); err != nil {
			return err
		}

		users := 10_000 + rng.Intn(5_000_000)
		countryUsers += float64(users)
		for _, brand := range phoneBrands {
			brandUsers := users / len(phoneBrands)
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO agregated_user_state VALUES (?, ?, ?, ?, ?, ?)`,
				state, year, quarter, brand, brandUsers, brandUsers,
			); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO map_transaction_hover_state VALUES (?, ?, ?, ?, ?)`,
			state, year, quarter, txnCount, base,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO map_insurence_hover_state VALUES (?, ?, ?, ?, ?)`,
			state, year, quarter, insCount, insAmount,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO map_user_hover_state VALUES (?, ?, ?, ?)`,
			state, year, quarter, users,
		); err != nil {
			return err
		}
	}

	for _, txnType := range transactionTypes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO agregated_transaction_country VALUES (?, ?, ?, ?, ?)`,
			year, quarter, txnType, countryAmount/float64(len(transactionTypes)), countryCount/len(transactionTypes),
		); err != nil {
			return err
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO aggregated_insurence_country VALUES (?, ?, ?, ?)`,
		year, quarter, countryAmount*0.03, countryCount/200,
	); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO aggregated_user_counry VALUES (?, ?, ?, ?)`,
		year, quarter, int(countryUsers), int(countryUsers),
	); err != nil {
		return err
	}

	return s.fillTop(ctx, tx, rng, year, quarter, growth)
}

// Top-entity kinds, matching the district/pincode drill of the dashboards.
const (
	entityDistrict = "district"
	entityPincode  = "pincode"
)

func (s *Seeder) fillTop(ctx context.Context, tx *sql.Tx, rng *rand.Rand, year, quarter int, growth float64) error {
	entities := make([]struct{ name, kind string }, 0, len(pincodes)+len(districts))
	for _, p := range pincodes {
		entities = append(entities, struct{ name, kind string }{p, entityPincode})
	}
	for _, d := range districts {
		entities = append(entities, struct{ name, kind string }{d, entityDistrict})
	}

	for i, e := range entities {
		amount := (1 + rng.Float64()*4) * 1e6 * growth
		count := 500 + rng.Intn(40_000)
		users := 5_000 + rng.Intn(300_000)
		state := stateSlugs[i%len(stateSlugs)]

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO top_transaction_country VALUES (?, ?, ?, ?, ?, ?)`,
			e.name, e.kind, year, quarter, amount, count,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO top_insurence_country VALUES (?, ?, ?, ?, ?, ?)`,
			e.name, e.kind, year, quarter, amount*0.04, count/100,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO top_user_country VALUES (?, ?, ?, ?, ?, ?)`,
			e.name, e.kind, year, quarter, users, count,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO top_transaction_state VALUES (?, ?, ?, ?, ?, ?, ?)`,
			state, e.name, e.kind, year, quarter, amount, count,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO top_insurance_state VALUES (?, ?, ?, ?, ?, ?, ?)`,
			state, e.name, e.kind, year, quarter, amount*0.04, count/100,
		); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO top_user_state VALUES (?, ?, ?, ?, ?, ?, ?)`,
			state, e.name, e.kind, year, quarter, users, count,
		); err != nil {
			return err
		}
	}
	return nil
}
