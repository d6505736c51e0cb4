// Package announcement stores the short notices shown on the applicant
// dashboard. Titles are a single alphanumeric word of up to 25 characters;
// messages may hold punctuation and line breaks up to 100 characters.
// Readers get the four newest.
package announcement
