package transforms

import (
	"fmt"
	"reflect"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"
)

// Definition overrides Data fields on every record of Type whose fields equal Match
// and for which the optional When expression is true
type Definition struct {
	Type  string                 `yaml:"Type"`
	Match map[string]string      `yaml:"Match"`
	When  string                 `yaml:"When"`
	Data  map[string]interface{} `yaml:"Data"`

	program *vm.Program
}

func (t *Definition) Compile() error {
	if t.When == "" || t.program != nil {
		return nil
	}

	program, err := expr.Compile(t.When, expr.AsBool())
	if err != nil {
		return fmt.Errorf("transform %s when %q: %w", t.Type, t.When, err)
	}
	t.program = program

	return nil
}

func (t *Definition) matchesType(inputValue reflect.Value) bool {
	if t.Type == "" {
		return true
	}

	inputType := inputValue.Type()
	return t.Type == inputType.String() || t.Type == inputType.Name()
}

func (t *Definition) isMatch(inputValue reflect.Value) bool {
	if !t.matchesType(inputValue) {
		return false
	}

	for key, value := range t.Match {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || fmt.Sprint(field.Interface()) != value {
			return false
		}
	}

	if t.program != nil {
		result, err := expr.Run(t.program, inputValue.Interface())
		if err != nil {
			log.Error().Err(err).Str("when", t.When).Msg("Failed to evaluate transform")
			return false
		}

		if matched, ok := result.(bool); !ok || !matched {
			return false
		}
	}

	return true
}

func (t *Definition) Transform(inputValue reflect.Value) {
	if !inputValue.IsValid() || inputValue.Kind() != reflect.Struct {
		return
	}

	if !t.isMatch(inputValue) {
		return
	}

	for key, value := range t.Data {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || !field.CanSet() {
			log.Warn().Str("type", inputValue.Type().String()).Str("field", key).Msg("Unknown transform field")
			continue
		}

		newValue := reflect.ValueOf(value)
		if !newValue.IsValid() {
			continue
		}

		if field.Kind() == reflect.String && newValue.Kind() != reflect.String {
			field.SetString(fmt.Sprint(value))
		} else if newValue.Type().ConvertibleTo(field.Type()) {
			field.Set(newValue.Convert(field.Type()))
		} else {
			log.Warn().Str("type", inputValue.Type().String()).Str("field", key).Msg("Transform value has the wrong type")
		}
	}
}
