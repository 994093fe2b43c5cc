// Package scene holds the editable document of the editor: an ordered stack of
// layers, each an ordered list of drawable objects, plus the current layer and
// the selection.
//
// Layers and objects are ordered back-to-front. A Scene always has at least one
// layer. The selection is a weak reference: it never owns the object and is
// cleared whenever the referenced object leaves the scene.
//
// Drawable objects are a closed tagged variant ([Object] with a [Kind] tag);
// kind-specific behavior (bounds, translation, commit thresholds, drawing) is
// dispatched on the tag rather than carried on the instance.
package scene
