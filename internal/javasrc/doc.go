// Package javasrc answers the two placement questions for a generated Java
// artifact: which package it belongs to and what its primary type is called.
// It also discovers the root package of an existing Maven project.
package javasrc
