package transforms

import "reflect"

type Transforms []*Definition

func (t Transforms) Compile() error {
	for _, definition := range t {
		if err := definition.Compile(); err != nil {
			return err
		}
	}

	return nil
}

// Transform applies every definition to a struct pointer or a slice of struct pointers
func (t Transforms) Transform(input interface{}) {
	if len(t) == 0 || input == nil {
		return
	}

	inputValueOf := reflect.ValueOf(input)

	if inputValueOf.Kind() == reflect.Slice {
		for i := 0; i < inputValueOf.Len(); i++ {
			t.transformValue(inputValueOf.Index(i))
		}
	} else {
		t.transformValue(inputValueOf)
	}
}

func (t Transforms) transformValue(inputValueOf reflect.Value) {
	if inputValueOf.Kind() != reflect.Pointer || inputValueOf.IsNil() {
		return
	}

	inputValue := inputValueOf.Elem()

	for _, transformDef := range t {
		transformDef.Transform(inputValue)
	}
}
