// Package cli is the interactive front end of xshare. It reads commands from
// a line reader, calls the services and prints their results. It holds no
// board state of its own beyond the listings it last printed, which are used
// to turn the numbers a user types into question and experience IDs.
//
// Pages of the board map onto commands:
//
//	register, login, logout, whoami   account pages
//	add                               dashboard (post an experience)
//	list | l, ask <n>                 experiences page with approved Q&A
//	pending, approve <n>, reject <n>  admin panel
//
// The admin panel is re-rendered whenever the pending queue changes while it
// is open. The change signal comes from storage.Store subscriptions, not from
// the command that made the change.
package cli
