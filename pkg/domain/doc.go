// Package domain contains the core entities of the address book: validated
// field values (phone numbers, birthdays) and the contact record that groups
// them. These types are free of storage and presentation concerns so they can
// be shared across packages.
package domain
