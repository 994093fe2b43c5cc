// Package editor is the public API of the creographics scene editor.
//
// A Session owns everything an editing session mutates: the current drawing
// style, the layered scene, the viewport zoom, the undo history and the tool
// controller. Hosts feed it pointer and wheel events in screen coordinates,
// call its layer, style and history operations from their menus, and draw
// the frame returned by Render.
//
// # Threading
//
// A Session belongs to one goroutine. The only asynchronous work, image asset
// loads and configuration reloads, runs elsewhere and is queued; the host
// calls Pump once per frame to apply it in event order. Each asset request
// gets an ID that loaders can read with RequestIDFromContext and that shows up
// in the session's log lines.
//
// # Example
//
//	s, err := editor.New(nil, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer s.Close()
//	_ = s.SetTool(tool.Rectangle)
//	s.PointerDown(10, 10, 0)
//	s.PointerMove(60, 40, 0)
//	s.PointerUp(60, 40, 0)
//	if err := s.ExportFile("out.png"); err != nil {
//		log.Fatal(err)
//	}
//
// # Persistence
//
// Save and Load use a JSON document {layers, properties, zoom}. Load is all
// or nothing: a malformed document yields a *DeserializationError and leaves
// the session untouched.
package editor
