// Package userdata manages the ~/.bootforge/userdata/ directory: the per-role
// variable store filled by action files, named profiles, and the env/
// directory holding credential files for the generation backend.
package userdata
