package component

// RunAsync runs work on its own goroutine and, once it completes, delivers
// the result back through invoke the same way any other callback is
// delivered — so a result arriving after the component using it has
// unmounted is silently dropped instead of writing into freed state.
// Grounded on _examples/ozanturksever-uiwgo/action/future.go's Future[T],
// trimmed to the one shape the component runtime actually needs: a
// fire-and-forget background operation that reports back through the
// update queue rather than a general Then/Catch/Await combinator chain.
func RunAsync[S any, A any](handle Handle[S], work func() A, onDone func(*S, A) ShouldRender) {
	go func() {
		result := work()
		invoke(handle, func(s *S) ShouldRender { return onDone(s, result) })
	}()
}

// RunAsyncErr is RunAsync for work that can fail; onDone receives the error
// (nil on success) alongside the result.
func RunAsyncErr[S any, A any](handle Handle[S], work func() (A, error), onDone func(*S, A, error) ShouldRender) {
	go func() {
		result, err := work()
		invoke(handle, func(s *S) ShouldRender { return onDone(s, result, err) })
	}()
}
