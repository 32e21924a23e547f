package mirror

import "fmt"

type Profile struct {
	Name string `json:"name"`
	age  int
}

func (p Profile) IsAdult() bool { return p.age >= 18 }

func (p *Profile) SetName(s string) { p.Name = s }

func ExampleByName() {
	p := Profile{Name: "sam", age: 30}

	name := ByName[Profile, string]("name")
	adult := ByName[Profile, bool]("adult")

	n, _ := name.Get(p)
	a, _ := adult.Get(p)
	fmt.Printf("name=%q adult=%v\n", n, a)

	// Output: name="sam" adult=true
}

func ExampleByProperty() {
	p := &Profile{}

	// Resolves the SetName method; falls back to the field when no setter
	// exists.
	m := ByProperty[*Profile, string]("name")
	m.Set(p, "alex")
	fmt.Printf("%s -> %q\n", m.Name(), p.Name)

	// Output: SetName -> "alex"
}

func ExampleMember_Signature() {
	fmt.Println(ByName[Profile, string]("name").Signature())
	fmt.Println(ByProperty[*Profile, string]("name").Signature())
	fmt.Println(ByName[Profile, string]("missing").Signature())

	// Output: exported field Name string
	// exported method SetName(string)
	// null
}

func ExampleMember_GetStrict() {
	hidden := ByName[Profile, int]("age")
	if _, err := hidden.GetStrict(Profile{age: 30}); err != nil {
		fmt.Println("strict:", err != nil)
	}

	open := hidden.With(WithUnexportedAccess())
	age, _ := open.GetStrict(Profile{age: 30})
	fmt.Println("age:", age)

	// Output: strict: true
	// age: 30
}

func ExampleMatchKind() {
	describe := func(d Descriptor) string {
		return MatchKind(d,
			func(f Field) string { return "field of " + f.Type().String() },
			func(m Method) string { return fmt.Sprintf("method with %d result(s)", m.Method.Type.NumOut()) },
			func(c Constructor) string { return "constructor of " + c.ConstructedType().String() },
			"nothing",
		)
	}

	fmt.Println(describe(ByName[Profile, string]("name").Descriptor()))
	fmt.Println(describe(ByName[Profile, bool]("adult").Descriptor()))
	fmt.Println(describe(nil))

	// Output: field of string
	// method with 1 result(s)
	// nothing
}
