// Package preview is a terminal host for popovers. It draws trigger boxes
// on a canvas and turns mouse and keyboard input into the same DOM events
// the browser host sends: pointer motion becomes pointerenter and
// pointerleave, a left press becomes pointerdown followed by click, Tab
// moves focus between triggers and Escape is a keydown.
package preview
