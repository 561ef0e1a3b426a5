// Package contact persists contact-form submissions.
//
// A submission arrives as a URL-encoded form or a JSON object, is appended as one row of the
// contact_submissions table, and answered with a fixed JSON body. Each request is a single
// attempt; the table is created on first use.
package contact
