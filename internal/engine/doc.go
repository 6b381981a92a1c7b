// Package engine interprets action files. Actions run strictly in order
// against one variable model: define and vars collect values from the
// operator, generate and replace change project files under templated
// control, and pom-update and inject-maven-dependency edit pom.xml.
package engine
