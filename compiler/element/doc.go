// Package element provides the self-rendering fragments a catalog enum is
// assembled from.
//
// Every element is a small immutable struct built by a NewXxx constructor and
// rendered with Render. Constructors reject missing required arguments with a
// *catalogen.ArgumentError, so a successfully constructed element always
// renders well-formed text. Rendering is pure and never fails.
//
// Elements render without indentation. Layout is the job of the source
// formatter that runs over the assembled file.
package element

// Element is a syntactic fragment of a generated source file.
type Element interface {
	Render() string
}
