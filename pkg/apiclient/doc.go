// Package apiclient provides the preconfigured HTTP clients for the
// authentication and video services.
//
// Each client is bound to a base address and an API version path, e.g.
// "https://auth.internal" + "/api/v1". The authentication client keeps a
// cookie jar so credential-bearing requests carry the session cookie the
// service sets.
//
//	auth, err := apiclient.NewAuthClient(cfg.API.AuthURL, cfg.API.Version)
//	resp, err := auth.ValidateUser(ctx, apiclient.ValidateUserRequest{...})
//
// Every request runs in an OpenTelemetry client span and carries the
// propagated trace headers. Failures are *errors.VangoError values with
// codes E200-E204.
package apiclient
