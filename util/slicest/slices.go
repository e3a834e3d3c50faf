// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds the small generic slice helpers the form widgets use.
package slicest

// MapX maps s through fn and stops at the first error.
func MapX[T, U any, S ~[]T](s S, fn func(T) (U, error)) ([]U, error) {
	result := make([]U, len(s))
	for i, v := range s {
		out, err := fn(v)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result, _ := MapX(s, func(t T) (U, error) {
		return fn(t), nil
	})
	return result
}

// Filter returns the elements of s for which keep is true.
func Filter[T any, S ~[]T](s S, keep func(T) bool) S {
	var result S
	for _, v := range s {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}
