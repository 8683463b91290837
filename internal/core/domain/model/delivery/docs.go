// Package delivery models one proof-of-delivery confirmation.
//
// A Submission is the validated operator input. The workflow moves it
// through State values, stamps it with a Moment, and finally produces a
// Record, the append-only ledger row. The user-visible result is an Outcome.
//
// Example:
//
//	sub, err := delivery.NewSubmission(kernel.NewUUID(), "1024", "Carlos", "ok", photo)
//	if err != nil {
//	    fmt.Println(delivery.ValidationMessage(err))
//	    return
//	}
//	at := delivery.NewMoment(clock.Now())
//	name := delivery.PhotoFileName(sub.OrderID(), at) // entrega_1024_20250701103000.jpg
//	rec, _ := delivery.NewRecord(sub, at, "static/uploads/"+name, nil)
//	fmt.Println(rec.EmailSent()) // 1
package delivery
