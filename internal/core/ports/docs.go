// Package ports declares the contracts the order core expects from the outside world:
// persistence of every aggregate behind a unit of work, and the notification collaborator.
package ports
