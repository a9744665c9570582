// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
)

// Optional is a three-state field: unset, explicitly null, or holding a value.
//
// The zero value is unset. JSON decoding marks the field as set whenever the
// key is present in the document, so {"clientId": null} and {} decode to
// different states. Together with the `omitzero` struct tag an unset field is
// left out of the encoded JSON, while an explicit null is written as null.
type Optional[T any] struct {
	set   bool
	value *T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: &v}
}

// Null returns an Optional that is set to an explicit null.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true}
}

// FromPtr returns Null for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Null[T]()
	}
	return Some(*p)
}

// FromNull converts a database nullable value into a set Optional.
func FromNull[T any](n sql.Null[T]) Optional[T] {
	if !n.Valid {
		return Null[T]()
	}
	return Some(n.V)
}

// IsSet reports whether the field was supplied, either as null or as a value.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// IsNull reports whether the field was supplied as an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.set && o.value == nil
}

// IsZero reports whether the field is unset. It drives `omitzero`.
func (o Optional[T]) IsZero() bool {
	return !o.set
}

// Get returns the held value and true, or the zero value and false when the
// field is unset or null.
func (o Optional[T]) Get() (T, bool) {
	if o.value == nil {
		var zero T
		return zero, false
	}
	return *o.value, true
}

// OrNull turns an unset field into an explicit null and keeps any other state.
func (o Optional[T]) OrNull() Optional[T] {
	if !o.set {
		return Null[T]()
	}
	return o
}

// MarshalJSON writes null for unset and null fields, the value otherwise.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.value)
}

// UnmarshalJSON marks the field as set; a JSON null leaves it without a value.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.set = true
	o.value = nil

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.value = &v
	return nil
}

// Scan implements [sql.Scanner]. A scanned column is always set.
func (o *Optional[T]) Scan(src any) error {
	var n sql.Null[T]
	if err := n.Scan(src); err != nil {
		return err
	}
	*o = FromNull(n)
	return nil
}

// Value implements [driver.Valuer]. Unset and null fields are stored as NULL.
func (o Optional[T]) Value() (driver.Value, error) {
	if o.value == nil {
		return nil, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(*o.value)
}
