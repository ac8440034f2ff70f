// Package service contains the application-specific use cases for tasks.
// It orchestrates interactions between domain objects and the task
// repository (defined in internal/store) to fulfill the API's operations.
//
// Key components:
//
// 1. Service Interfaces:
//   - TaskService defines the operations available to the HTTP layer
//
// 2. Use Case Implementations:
//   - Apply transactional boundaries for read-modify-write operations
//   - Enforce task rules via the domain package before touching storage
//
// 3. Error Handling:
//   - Store "not found" errors are translated to ErrTaskNotFound
//   - Validation errors from the domain pass through unchanged
//   - Unexpected failures are wrapped in TaskServiceError
//
// The service layer depends on domain entities and repository interfaces,
// never on a specific database implementation.
package service
