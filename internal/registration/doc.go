// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// Package registration holds the registration form's state and the rules that
// validate it. Everything here is UI-agnostic: the TUI, the line prompts and
// the batch validator all drive the same FormState.
//
// A FormState moves through Editing -> Validating -> Success or
// EditingWithErrors on Submit; Reset always returns it to Editing with
// empty values.
package registration
