// Package session holds the client-side session state: the access/refresh
// token pair, the signed-in user, and the authenticated flag. The Store is
// the single source of truth; only the auth flows in internal/api mutate it.
// Credentials persist across invocations in ~/.learnly/credentials.json and
// are cleared wholesale on logout or terminal auth failure.
package session
