// Package model defines the provider-agnostic contract for a single
// structured-call round trip against a hosted chat model.
//
// Core goals:
//   - Normalize tool / function call representation (ToolDefinition, FunctionCall)
//   - Keep request/response shapes minimal and transport independent
//   - Surface transport failures as typed ServiceError values, never retried
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (e.g. OpenAI, Anthropic) implement the Model interface from this
// package so the invoker remains decoupled from vendor SDKs.
package model
