package javasrc

import "testing"

func TestExtractTypeName(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		want   string
		wantOK bool
	}{
		{"class", "public class Customer {\n}", "Customer", true},
		{"interface", "public interface CustomerRepository extends JpaRepository<Customer, Long> {}", "CustomerRepository", true},
		{"annotation type", "public @interface Audited {}", "Audited", true},
		{"enum", "public enum Status { ACTIVE }", "Status", true},
		{"class wins over earlier interface", "interface Marker {}\nclass Impl implements Marker {}", "Impl", true},
		{"not at line start", "@Entity public class Book {}", "Book", true},
		{"no declaration", "// nothing here\nint x = 1;", "", false},
		{"classname substring ignored", "String subclass = \"x\";", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractTypeName(tt.code)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ExtractTypeName() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
