// Package formspec builds forms from declarative YAML schemas.
//
// A schema lists fields in tab order. Each field has a name, an optional
// title, placeholder and style identifiers, a type (text, email or password)
// and either a list of rule expressions understood by validator.ParseRule or a
// compare_with target plus the error shown when the texts differ. The
// optional sanitize list names sanitizer transforms applied to the text
// before it is checked.
//
//	name: signup
//	fields:
//	  - name: email
//	    type: email
//	    sanitize: [trim, email]
//	    rules: [required, email]
//	  - name: password
//	    type: password
//	    rules: ["required", "min_len:8"]
//	  - name: confirm
//	    title: Confirm password
//	    type: password
//	    compare_with: password
//	    error: Passwords do not match
//
// Parse and Load reject unknown keys and report every schema problem at once,
// joined under ErrInvalidSchema. Build wires the fields with a shared change
// callback, installs compare targets after every field exists and marks the
// last field as the end of the screen.
//
//	s, err := formspec.Load("signup.yaml")
//	if err != nil {
//	    return err
//	}
//	f, err := s.Build(formspec.WithOnChange(refresh))
package formspec
