// Package msgs defines the messages exchanged with a skibot
// controller over the bus. Messages travel in a Typed envelope
// carrying a type ID and an optional command sequence; payloads
// are JSON.
package msgs
