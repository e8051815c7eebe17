// Package mongodb implements the entity and credential stores on a
// hosted document database. Records carry their own uuid "id" field;
// Mongo's _id stays internal to the driver.
package mongodb

import "strings"

func canonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
