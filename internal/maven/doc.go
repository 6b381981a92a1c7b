// Package maven edits a project's pom.xml: it merges dependency fragments
// without introducing duplicates and updates the project's name, version and
// description.
package maven
