// Package services holds the client's application state objects: theme,
// session registry, auth flow and the active chat session. Each one is an
// explicit value created once by the CLI and passed to whoever needs it;
// all of them persist through a Store.
package services
