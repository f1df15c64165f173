package repl

import (
	"regexp"

	"github.com/dop251/goja"
)

// RegexModule provides the regex helpers exposed to scripts as `re`.
type RegexModule struct{}

// FindAll finds all matches of pattern in text.
func (r *RegexModule) FindAll(pattern, text string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindAllString(text, -1), nil
}

// Search finds the first match of pattern in text.
func (r *RegexModule) Search(pattern, text string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", err
	}
	return re.FindString(text), nil
}

// Split splits text by pattern, into at most n pieces when n >= 0.
func (r *RegexModule) Split(pattern, text string, n int) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.Split(text, n), nil
}

// Replace replaces matches of pattern in text with repl.
func (r *RegexModule) Replace(pattern, text, repl string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(text, repl), nil
}

// installRegexModule adds the 're' object with regex helper functions.
func (e *Engine) installRegexModule() error {
	mod := &RegexModule{}
	re := e.vm.NewObject()

	// re.findAll(pattern, text) -> array of matches
	findAll := func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(e.vm.NewTypeError("findAll requires 2 arguments: pattern, text"))
		}
		matches, err := mod.FindAll(call.Arguments[0].String(), call.Arguments[1].String())
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		return e.vm.ToValue(matches)
	}
	if err := re.Set("findAll", findAll); err != nil {
		return err
	}

	// re.search(pattern, text) -> first match or empty string
	search := func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(e.vm.NewTypeError("search requires 2 arguments: pattern, text"))
		}
		match, err := mod.Search(call.Arguments[0].String(), call.Arguments[1].String())
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		return e.vm.ToValue(match)
	}
	if err := re.Set("search", search); err != nil {
		return err
	}

	// re.split(pattern, text, n) -> array of strings
	split := func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 2 {
			panic(e.vm.NewTypeError("split requires at least 2 arguments: pattern, text"))
		}
		n := -1 // unlimited by default
		if len(call.Arguments) >= 3 {
			n = int(call.Arguments[2].ToInteger())
		}
		parts, err := mod.Split(call.Arguments[0].String(), call.Arguments[1].String(), n)
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		return e.vm.ToValue(parts)
	}
	if err := re.Set("split", split); err != nil {
		return err
	}

	// re.replace(pattern, text, replacement) -> replaced string
	replace := func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 3 {
			panic(e.vm.NewTypeError("replace requires 3 arguments: pattern, text, replacement"))
		}
		result, err := mod.Replace(call.Arguments[0].String(), call.Arguments[1].String(), call.Arguments[2].String())
		if err != nil {
			panic(e.vm.NewGoError(err))
		}
		return e.vm.ToValue(result)
	}
	if err := re.Set("replace", replace); err != nil {
		return err
	}

	return e.vm.Set("re", re)
}
