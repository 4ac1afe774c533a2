// Package cryptofolio tracks a personal portfolio of crypto assets. It is
// designed for a single user and keeps its state local: a session holds the
// holdings, the price alerts and the notifications, and the holdings can be
// saved to and loaded from a small JSON file.
//
// The core functionalities include:
//   - Portfolio Management: accumulating and removing holdings, and valuing
//     them against current prices (see Recompute and TotalValue).
//   - Market Data: a PriceSource gives access to the catalog of assets,
//     their current prices and their price history. The coingecko package
//     provides the implementation backed by the CoinGecko API.
//   - Price Alerts: one-shot threshold conditions evaluated after each
//     command, emitting notifications.
//   - Data Persistence: the portfolio file is a plain JSON object mapping
//     asset identifiers to quantities, and notification settings live in a
//     YAML file.
//
// This package serves as the foundational logic for the `cfo` command-line
// tool.
package cryptofolio
