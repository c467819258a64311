/*
Package runner streams walk traces and guards raw puzzle input.

Trace handlers turn domain.LifecycleHooks events into output: TextHandler
writes one readable line per event, JSONHandler writes JSON Lines for other
programs. Both are safe to share between concurrent walks.

	trace := runner.NewJSONHandler(os.Stdout)
	solver := cubewalk.New(cubewalk.WithLifecycleHooks(trace.Hooks()))

SanitizeInput validates puzzle text received from untrusted callers before it
reaches the parser.
*/
package runner
