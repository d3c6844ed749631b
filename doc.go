// Package bookstore implements a single-user bookstore inventory with a
// built-in audit trail. It is designed to be local-first and auditable: the
// whole state lives in memory, every successful mutation is recorded in an
// append-only transaction log, and the state is persisted as a single JSON
// document with a one-generation backup.
//
// The core functionalities include:
//   - Book Management: Adding, searching, and removing books, and adjusting
//     their stock and price while preserving the non-negative stock and
//     ceiling-rounded price invariants.
//   - Transaction Log: An immutable, chronological record of every mutation
//     (ADD_BOOK, STOCK_UPDATE, PRICE_UPDATE, REMOVE_BOOK) with an
//     action-specific payload.
//   - Data Persistence: Encoding and decoding the inventory to and from a
//     human-readable JSON file, rotating the previous generation to a
//     ".backup" file before every write.
//
// This package serves as the foundational logic for the `bsi` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package bookstore
