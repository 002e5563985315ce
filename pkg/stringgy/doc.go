/*
Package stringgy finds text inside binary files and patches it in place.

# Quick Start

List every occurrence of a string in UTF-8 and UTF-16LE:

	res, err := stringgy.Search("program.exe", "example.com", nil)
	if err != nil {
	    log.Fatal(err)
	}
	for i, m := range res.Matches {
	    fmt.Printf("[%d] 0x%08X %s %q\n", i+1, m.Offset, m.Encoding, m.ContextText)
	}

Replace selected matches, confirming each write:

	s := stringgy.OpenSession("program.exe", &stringgy.SessionOptions{
	    Confirm: stringgy.ConfirmFunc(func(p types.Preview) (bool, error) {
	        fmt.Println(p.OldContext, "->", p.NewContext)
	        return true, nil
	    }),
	})
	sum, err := s.Replace(res, stringgy.All(res), "example.org",
	    stringgy.ReplaceOptions{Mode: types.ModeExact})

# Guarantees

  - Search never writes; repeated searches of an unchanged file are identical.
  - A write never changes the file length: exactly the matched span is
    overwritten with a payload of the same length.
  - A timestamped backup is taken once per session, before the first write.
  - Every write is read back and compared; a mismatch is reported on that
    match's outcome and does not stop the batch.
  - Only backup failures and file-level I/O failures end a session.
*/
package stringgy
