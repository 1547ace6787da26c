// Package types provides shared data structures for the file commander.
//
// This package defines core types used across all components,
// ensuring type safety and consistent data structures.
//
// Core Types:
//   - Kind: Closed enum over the supported operation kinds
//   - Operation: One planned step with named parameters
//   - Plan: Ordered sequence of operations
//   - Result: Standard per-operation outcome
//   - Service, Tool, Parameter: Operation catalog definitions
//
// Example Usage:
//
//	op := types.Operation{
//	    Kind:   types.KindCreateFolder,
//	    Params: map[string]string{"folder_name": "reports", "location": "desktop"},
//	}
package types
