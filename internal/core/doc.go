// Package core provides the workflow layer of wspace.
//
// A [Controller] turns user intents into calls on a store.Store and launches
// of the editor through a process.Launcher. It never prints; presentation
// belongs in cmd and the cli package.
//
// # Intents
//
// Each user action maps to one method: [Controller.AddWorkspace],
// [Controller.ViewWorkspace], [Controller.AddDir], [Controller.DeleteDir],
// [Controller.OpenWorkspace] and so on. Expected failures come back as the
// typed errors of the store and model packages, wrapped with the operation
// name.
//
// # Sessions
//
// Interactive use goes through [Controller.Transition], which takes the
// current [Session] and an [Event] and returns the next session:
//
//	s := core.NewSession()
//	s = ctrl.Transition(ctx, s, core.ChooseMenu{Choice: core.MenuList})
//	s = ctrl.Transition(ctx, s, core.SelectWorkspace{Name: "proj"})
//
// The name to id index shown on the workspace listing is fetched again every
// time the listing is entered.
package core
