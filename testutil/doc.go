// Package testutil provides deterministic table generators and invariant
// checks shared by the package tests.
package testutil
