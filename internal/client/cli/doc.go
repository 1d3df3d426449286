// Package cli provides the interactive JobTracker command-line client.
//
// It wires configuration, the local session store, the gRPC client, the
// services and the session context, then runs a REPL that routes each line
// to a view:
//
//   - signin (login), register, guest: authenticate, then open the list
//   - list (home): records grouped into Offers, Interviews, Rejected, Other
//   - add, edit <id>, delete <id>: change records
//   - export: download a JSON snapshot into the export directory
//   - logout, help, exit
//
// Protected views redirect to sign-in while signed out and unknown commands
// get the not-found view. The REPL is started via App.Run, which blocks
// until the user exits.
package cli
