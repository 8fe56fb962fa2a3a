package acl

import "context"

// serviceCtxKey is the context key for storing the ACL service.
type serviceCtxKey struct{}

// SetToContext stores the service in the context so handler chains can
// consume Can and HasRole as plain predicates.
func SetToContext(ctx context.Context, service *Service) context.Context {
	return context.WithValue(ctx, serviceCtxKey{}, service)
}

// FromContext retrieves the service from the context.
func FromContext(ctx context.Context) (*Service, bool) {
	service, ok := ctx.Value(serviceCtxKey{}).(*Service)
	return service, ok
}
