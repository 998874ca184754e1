// Package conduittests contains the contract test suite for the Conduit demo
// API, along with the domain-specific test API (the T type) that the tests
// are written against.
package conduittests
