// Package catalog resolves a user-facing data category to its dataset and
// column roles. The underlying store schema is not uniform: semantically
// equivalent measures live under amount/total_amount/total_transactions_amount
// and count/number_of_transactions depending on the dataset, and several
// dataset names carry historical misspellings. The catalog is the single
// place that knows these quirks; it is built once at startup and never
// mutated.
package catalog

import (
	"fmt"
	"sort"
)

// Kind classifies a category's measure semantics.
type Kind string

// Category kinds.
const (
	KindTransaction Kind = "transaction"
	KindInsurance   Kind = "insurance"
	KindUser        Kind = "user"
)

// Color scale identifiers handed to the charting layer.
const (
	ScaleTransactions = "Plasma_r"
	ScaleInsurance    = "Viridis_r"
	ScaleUsers        = "Purples"
	ScaleGrowth       = "RdYlGn"
	ScaleHeatmap      = "YlOrRd"
)

// Config describes how to read one category's dataset.
type Config struct {
	// Category is the user-facing name this config resolves from.
	Category string `json:"category"`
	// Dataset is the store table holding the category's rows.
	Dataset string `json:"dataset"`
	// ValueColumn holds the primary measure (currency amount or user count).
	ValueColumn string `json:"value_column"`
	// CountColumn holds the transaction count; empty when the dataset has
	// no count measure (user categories).
	CountColumn string `json:"count_column,omitempty"`
	// LabelColumn is the entity dimension being ranked (state, phone_brand,
	// entity_name); empty for country-level aggregates with no entity.
	LabelColumn string `json:"label_column,omitempty"`
	// Kind selects measure semantics for presentation.
	Kind Kind `json:"kind"`
	// ColorScale names the chart color scale for this category.
	ColorScale string `json:"color_scale"`
	// ValueLabel is the display name of the value measure.
	ValueLabel string `json:"value_label"`
}

// HasCount reports whether the dataset carries a count measure.
func (c Config) HasCount() bool { return c.CountColumn != "" }

// CurrencyValued reports whether the value measure is a rupee amount rather
// than a user/device count.
func (c Config) CurrencyValued() bool { return c.Kind != KindUser }

// Query returns the read query for the category's dataset. Datasets are
// pre-aggregated views; the dashboard always reads them whole and shapes
// rows in memory.
func (c Config) Query() string {
	return fmt.Sprintf("SELECT * FROM %s", c.Dataset)
}

// Catalog is the immutable category registry.
type Catalog struct {
	configs map[string]Config
}

// New builds the full category registry.
func New() *Catalog {
	entries := []Config{
		{
			Category:    "Transaction State",
			Dataset:     "aggregated_transaction_state",
			ValueColumn: "total_amount",
			CountColumn: "number_of_transactions",
			LabelColumn: "state",
			Kind:        KindTransaction,
			ColorScale:  ScaleTransactions,
			ValueLabel:  "Transaction Amount",
		},
		{
			Category:    "Transaction Country",
			Dataset:     "agregated_transaction_country",
			ValueColumn: "amount",
			CountColumn: "count",
			Kind:        KindTransaction,
			ColorScale:  ScaleTransactions,
			ValueLabel:  "Transaction Amount",
		},
		{
			Category:    "Insurance State",
			Dataset:     "aggregated_insurence_state",
			ValueColumn: "total_amount",
			CountColumn: "number_of_transactions",
			LabelColumn: "state",
			Kind:        KindInsurance,
			ColorScale:  ScaleInsurance,
			ValueLabel:  "Insurance Amount",
		},
		{
			Category:    "Insurance Country",
			Dataset:     "aggregated_insurence_country",
			ValueColumn: "amount",
			CountColumn: "count",
			Kind:        KindInsurance,
			ColorScale:  ScaleInsurance,
			ValueLabel:  "Insurance Amount",
		},
		{
			Category:    "User State",
			Dataset:     "agregated_user_state",
			ValueColumn: "registered_users",
			LabelColumn: "phone_brand",
			Kind:        KindUser,
			ColorScale:  ScaleUsers,
			ValueLabel:  "Registered Users",
		},
		{
			Category:    "User Country",
			Dataset:     "aggregated_user_counry",
			ValueColumn: "registered_users",
			Kind:        KindUser,
			ColorScale:  ScaleUsers,
			ValueLabel:  "Registered Users",
		},
		{
			Category:    "Map Transaction",
			Dataset:     "map_transaction_hover_state",
			ValueColumn: "total_transactions_amount",
			CountColumn: "total_transactions_count",
			LabelColumn: "state",
			Kind:        KindTransaction,
			ColorScale:  ScaleTransactions,
			ValueLabel:  "Transaction Amount",
		},
		{
			Category:    "Map Insurance",
			Dataset:     "map_insurence_hover_state",
			ValueColumn: "total_transactions_amount",
			CountColumn: "total_transactions_count",
			LabelColumn: "state",
			Kind:        KindInsurance,
			ColorScale:  ScaleInsurance,
			ValueLabel:  "Insurance Amount",
		},
		{
			Category:    "Map User",
			Dataset:     "map_user_hover_state",
			ValueColumn: "registered_users",
			LabelColumn: "state",
			Kind:        KindUser,
			ColorScale:  ScaleUsers,
			ValueLabel:  "Registered Users",
		},
		{
			Category:    "Top Transaction",
			Dataset:     "top_transaction_country",
			ValueColumn: "amount",
			CountColumn: "count",
			LabelColumn: "entity_name",
			Kind:        KindTransaction,
			ColorScale:  ScaleTransactions,
			ValueLabel:  "Transaction Amount",
		},
		{
			Category:    "Top Insurance",
			Dataset:     "top_insurence_country",
			ValueColumn: "amount",
			CountColumn: "count",
			LabelColumn: "entity_name",
			Kind:        KindInsurance,
			ColorScale:  ScaleInsurance,
			ValueLabel:  "Insurance Amount",
		},
		{
			Category:    "Top User",
			Dataset:     "top_user_country",
			ValueColumn: "registeredUsers",
			CountColumn: "count",
			LabelColumn: "entity_name",
			Kind:        KindUser,
			ColorScale:  ScaleUsers,
			ValueLabel:  "Registered Users",
		},
		{
			Category:    "Top Transaction State",
			Dataset:     "top_transaction_state",
			ValueColumn: "amount",
			CountColumn: "count",
			LabelColumn: "entity_name",
			Kind:        KindTransaction,
			ColorScale:  ScaleTransactions,
			ValueLabel:  "Transaction Amount",
		},
		{
			Category:    "Top Insurance State",
			Dataset:     "top_insurance_state",
			ValueColumn: "amount",
			CountColumn: "count",
			LabelColumn: "entity_name",
			Kind:        KindInsurance,
			ColorScale:  ScaleInsurance,
			ValueLabel:  "Insurance Amount",
		},
		{
			Category:    "Top User State",
			Dataset:     "top_user_state",
			ValueColumn: "registeredUsers",
			CountColumn: "count",
			LabelColumn: "entity_name",
			Kind:        KindUser,
			ColorScale:  ScaleUsers,
			ValueLabel:  "Registered Users",
		},
	}

	configs := make(map[string]Config, len(entries))
	for _, e := range entries {
		configs[e.Category] = e
	}
	return &Catalog{configs: configs}
}

// Resolve returns the config for a category, or ErrUnknownCategory. Callers
// must not issue any dataset query for a category that fails to resolve.
func (c *Catalog) Resolve(category string) (Config, error) {
	cfg, ok := c.configs[category]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return cfg, nil
}

// Categories lists every registered category name, sorted.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.configs))
	for name := range c.configs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
