// Package manifest defines the per-tool descriptor and its loader.
//
// Every tool directory under apps/ carries an app.yaml describing identity,
// entry point, and presentation metadata. Loading is a pure read: a
// directory yields either a fully validated AppManifest or exactly one
// structured LoadFailure, never a partial record and never a side effect.
// Failure kinds are deliberately distinct — a malformed file, a set of
// missing required fields, a reserved id, and a dangling icon reference are
// different problems with different fixes.
//
// Manifests are loaded fresh on every registry build; nothing in this
// package caches or mutates descriptors.
package manifest
