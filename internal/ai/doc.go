// Package ai adds generated code to a Maven project. It derives the Spring
// project a description is about, builds the prompt context from the
// project's root package, asks the generation backend for code, writes the
// annotated response as a README and hands the classified artifacts to the
// merge writer.
package ai
