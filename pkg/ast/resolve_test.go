package ast

import "testing"

func TestSelectorName(t *testing.T) {
	tests := []struct {
		name string
		sel  *MethodSelector
		want string
	}{
		{
			name: "nil selector",
			sel:  nil,
			want: "",
		},
		{
			name: "bare name",
			sel:  &MethodSelector{Name: "description"},
			want: "description",
		},
		{
			name: "keyword label",
			sel: &MethodSelector{Keywords: []*KeywordDeclarator{
				{Selector: "setValue", Param: "value"},
				{Selector: "forKey", Param: "key"},
			}},
			want: "setValue",
		},
		{
			name: "unlabeled head falls back to param",
			sel: &MethodSelector{Keywords: []*KeywordDeclarator{
				{Selector: "", Param: "x"},
			}},
			want: "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.SelectorName(); got != tt.want {
				t.Errorf("SelectorName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindImplementations(t *testing.T) {
	classImpl := &ClassImplementation{Name: "Dog"}
	catImpl := &CategoryImplementation{ClassName: "NSString", CategoryName: "Trimming"}
	unit := &TranslationUnit{Decls: []Node{
		&ClassInterface{Name: "Dog"},
		classImpl,
		catImpl,
	}}

	if got := FindClassImplementation(unit, "Dog"); got != classImpl {
		t.Errorf("FindClassImplementation(Dog) = %v, want the implementation node", got)
	}
	if got := FindClassImplementation(unit, "Cat"); got != nil {
		t.Errorf("FindClassImplementation(Cat) = %v, want nil", got)
	}
	if got := FindCategoryImplementation(unit, "NSString", "Trimming"); got != catImpl {
		t.Errorf("FindCategoryImplementation = %v, want the category node", got)
	}
	if got := FindCategoryImplementation(unit, "NSString", "Shouting"); got != nil {
		t.Errorf("FindCategoryImplementation(Shouting) = %v, want nil", got)
	}
	if got := FindClassImplementation(nil, "Dog"); got != nil {
		t.Errorf("FindClassImplementation(nil unit) = %v, want nil", got)
	}
}

func TestBuildOwnerIndexEmptyUnit(t *testing.T) {
	idx := BuildOwnerIndex(nil)
	if idx == nil || len(idx) != 0 {
		t.Errorf("BuildOwnerIndex(nil) = %v, want empty index", idx)
	}
}
