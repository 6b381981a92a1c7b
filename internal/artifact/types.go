package artifact

// Kind identifies what a classified block is for.
type Kind string

// Artifact kinds.
const (
	KindSourceCode            Kind = "SOURCE_CODE"
	KindTestCode              Kind = "TEST_CODE"
	KindMavenDependencies     Kind = "MAVEN_DEPENDENCIES"
	KindApplicationProperties Kind = "APPLICATION_PROPERTIES"
	KindMainClass             Kind = "MAIN_CLASS"
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{
	KindSourceCode,
	KindTestCode,
	KindMavenDependencies,
	KindApplicationProperties,
	KindMainClass,
}

// ProjectArtifact is one classified unit of generated content.
type ProjectArtifact struct {
	Kind Kind
	Text string
}

// Gap describes a fenced block that could not be classified.
type Gap struct {
	Info    string
	Excerpt string
}
