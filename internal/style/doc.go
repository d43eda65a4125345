// Package style holds the attribute records used to customise content cards.
//
// Every field is a pointer and nil means "unset, inherit the default". A
// default record is combined with a caller-supplied override by Merge: fields
// the override sets win, everything else comes from the default. Nested
// records are replaced wholesale, except ButtonStyle.Text which is merged
// field by field.
package style
