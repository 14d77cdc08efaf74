// Package domain contains the core business entities, value objects, and
// domain logic of the application: construction companies and the
// services, projects, and employees that belong to them. It is independent
// of any specific infrastructure or delivery mechanism.
package domain
