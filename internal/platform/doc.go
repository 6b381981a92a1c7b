// Package platform provides cross-platform filesystem operations: permission
// management and in-place file replacement through a sibling temp file.
// On Windows permission bits are not applied.
package platform
