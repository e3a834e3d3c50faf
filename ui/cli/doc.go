// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Regform using Cobra.
// It loads configuration, initializes logging and i18n, and hands over to the
// interactive form, the line prompts or the batch validator. CLI code should
// remain thin and delegate form logic to internal/registration.
package cli
