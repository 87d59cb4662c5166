// package models defines the persisted record types and the bundled
// meditation catalog for the tfive application.
package models
