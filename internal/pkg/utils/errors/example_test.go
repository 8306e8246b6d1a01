package errors_test

import (
	"fmt"
	"regexp"

	"github.com/termtools/tbx2sheet/internal/pkg/utils/errors"
)

func ExampleNew() {
	fmt.Println(errors.New(`no entries found in "empty.tbx"`))
	// output:
	// no entries found in "empty.tbx"
}

func ExampleErrorf() {
	err := errors.Errorf(`cannot parse TBX file "%s": %w`, "doc.tbx", errors.New("XML syntax error on line 3"))
	fmt.Println(err)
	// output:
	// cannot parse TBX file "doc.tbx": XML syntax error on line 3
}

func ExampleWrapf() {
	err := errors.Wrapf(errors.New("file not found"), `cannot read mapping file "%s"`, "mapping.json")
	fmt.Println(errors.Format(err, errors.FormatWithUnwrap()))
	// output:
	// cannot read mapping file "mapping.json" (*errors.wrappedError):
	// - file not found
}

func ExampleWrap() {
	err := errors.Wrap(errors.New("file not found"), `cannot read TBX file "doc.tbx"`)
	fmt.Println(errors.Format(err, errors.FormatWithUnwrap()))
	// output:
	// cannot read TBX file "doc.tbx" (*errors.wrappedError):
	// - file not found
}

func ExampleWithStack() {
	originalErr := errors.New("empty document")
	err := errors.WithStack(originalErr)
	re := regexp.MustCompile(`\[.*/internal`)
	fmt.Println(string(re.ReplaceAll([]byte(errors.Format(err, errors.FormatWithStack())), []byte("["))))
	// output:
	// empty document [/pkg/utils/errors/example_test.go:40]
}

func ExampleFormatWithStack() {
	originalErr := errors.New("empty document")
	wrappedErr := errors.Wrapf(originalErr, `cannot parse TBX file "%s"`, "doc.tbx")
	fmt.Println("Standard output:")
	fmt.Println(errors.Format(wrappedErr))
	fmt.Println()
	fmt.Println("FormatWithStack:")
	re := regexp.MustCompile(`\[.*/internal`)
	fmt.Println(string(re.ReplaceAll([]byte(errors.Format(wrappedErr, errors.FormatWithStack())), []byte("["))))
	// output:
	// Standard output:
	// cannot parse TBX file "doc.tbx"
	//
	// FormatWithStack:
	// cannot parse TBX file "doc.tbx" [/pkg/utils/errors/example_test.go:50] (*errors.wrappedError):
	// - empty document [/pkg/utils/errors/example_test.go:49]
}

func ExampleFormatWithUnwrap() {
	originalErr := errors.New("file not found")
	wrappedErr := errors.Wrapf(originalErr, `cannot read mapping file "%s"`, "mapping.json")
	fmt.Println("Standard output:")
	fmt.Println(errors.Format(wrappedErr))
	fmt.Println()
	fmt.Println("FormatWithUnwrap:")
	fmt.Println(errors.Format(wrappedErr, errors.FormatWithUnwrap()))
	// output:
	// Standard output:
	// cannot read mapping file "mapping.json"
	//
	// FormatWithUnwrap:
	// cannot read mapping file "mapping.json" (*errors.wrappedError):
	// - file not found
}

func ExampleFormatAsSentences() {
	err := errors.NewNestedError(
		errors.New("cannot write the output"),
		errors.New("xlsx writer failed: disk full"),
		errors.New("alternative csv writer failed: disk full"),
	)
	fmt.Println("Standard output:")
	fmt.Println(errors.Format(err))
	fmt.Println()
	fmt.Println("FormatAsSentences:")
	fmt.Println(errors.Format(err, errors.FormatAsSentences()))
	// output:
	// Standard output:
	// cannot write the output:
	// - xlsx writer failed: disk full
	// - alternative csv writer failed: disk full
	//
	// FormatAsSentences:
	// Cannot write the output:
	// - Xlsx writer failed: disk full.
	// - Alternative csv writer failed: disk full.
}

func Example_format() {
	errs := errors.NewMultiError()
	errs.Append(errors.New(`field "usage" not found in the document`))
	errs.Append(errors.New(`field "xref" not found in the document`))
	errs.Append(errors.Wrapf(errors.New("file not found"), `cannot read mapping file "%s"`, "mapping.json"))

	fmt.Println("Standard output:")
	fmt.Println(errors.Format(errs.ErrorOrNil()))
	fmt.Println()
	fmt.Println("FormatWithUnwrap:")
	fmt.Println(errors.Format(errs.ErrorOrNil(), errors.FormatWithUnwrap()))
	fmt.Println()
	fmt.Println("FormatAsSentences:")
	fmt.Println(errors.Format(errs.ErrorOrNil(), errors.FormatAsSentences()))
	fmt.Println()
	fmt.Println("FormatWithUnwrap, FormatAsSentences:")
	fmt.Println(errors.Format(errs.ErrorOrNil(), errors.FormatWithUnwrap(), errors.FormatAsSentences()))
	// output:
	// Standard output:
	// - field "usage" not found in the document
	// - field "xref" not found in the document
	// - cannot read mapping file "mapping.json"
	//
	// FormatWithUnwrap:
	// - field "usage" not found in the document
	// - field "xref" not found in the document
	// - cannot read mapping file "mapping.json" (*errors.wrappedError):
	//   - file not found
	//
	// FormatAsSentences:
	// - Field "usage" not found in the document.
	// - Field "xref" not found in the document.
	// - Cannot read mapping file "mapping.json".
	//
	// FormatWithUnwrap, FormatAsSentences:
	// - Field "usage" not found in the document.
	// - Field "xref" not found in the document.
	// - Cannot read mapping file "mapping.json". (*errors.wrappedError):
	//   - File not found.
}

func Example_multiError() {
	errs := errors.NewMultiError()
	errs.Append(errors.New(`field "usage" not found in the document`))
	errs.Append(errors.New(`field "xref" not found in the document`))

	sub := errs.AppendNested(errors.New(`entry "c7" is not valid`))
	sub.Append(errors.New("no language groups found"))
	sub.Append(errors.New("no terms found"))

	errs.AppendWithPrefixf(errors.New("disk full"), `cannot write file "%s"`, "out.xlsx")

	errs.Append(errors.NewNestedError(
		errors.New(`entry "c9" is not valid`),
		errors.New("missing id attribute"),
		errors.New("no terms found"),
	))

	// return errs.ErrorOrNil()

	fmt.Println("Standard output:")
	fmt.Println(errors.Format(errs))
	fmt.Println()
	fmt.Println("FormatAsSentences:")
	fmt.Println(errors.Format(errs, errors.FormatAsSentences()))
	// output:
	// Standard output:
	// - field "usage" not found in the document
	// - field "xref" not found in the document
	// - entry "c7" is not valid:
	//   - no language groups found
	//   - no terms found
	// - cannot write file "out.xlsx": disk full
	// - entry "c9" is not valid:
	//   - missing id attribute
	//   - no terms found
	//
	// FormatAsSentences:
	// - Field "usage" not found in the document.
	// - Field "xref" not found in the document.
	// - Entry "c7" is not valid:
	//   - No language groups found.
	//   - No terms found.
	// - Cannot write file "out.xlsx": Disk full.
	// - Entry "c9" is not valid:
	//   - Missing id attribute.
	//   - No terms found.
}
