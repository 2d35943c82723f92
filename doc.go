// Package turbosign provides a Go client SDK for TurboSign, the TurboDocx
// document e-signature API.
//
// The SDK turns a description of a signing request (a document source, the
// recipients in signing order, and form fields placed by coordinates or by
// text anchors) into a single request against the TurboSign REST API, and
// maps failures into typed, inspectable errors.
//
// Basic usage:
//
//	client, err := turbosign.New(turbosign.WithAPIKey("your-api-key"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.PrepareForSigning(ctx, &turbosign.SignatureRequest{
//	    Source: turbosign.RemoteURL("https://example.com/contract.pdf"),
//	    Recipients: []turbosign.Recipient{
//	        {Name: "John Doe", Email: "john@example.com", SigningOrder: 1},
//	    },
//	    Fields: []turbosign.Field{
//	        turbosign.CoordinateField{
//	            Type:      turbosign.FieldSignature,
//	            Page:      1,
//	            X:         100,
//	            Y:         500,
//	            Recipient: turbosign.ByEmail("john@example.com"),
//	        },
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Document:", result.DocumentID)
//
// Errors fall into three groups: construction errors (BuildError) surface
// before any network call, transport failures surface as NetworkError, and
// non-2xx API responses map to APIError carrying the HTTP status, machine
// error code, and message.
package turbosign
