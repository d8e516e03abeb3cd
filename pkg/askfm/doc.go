// Package askfm fetches answer pages from the Q&A site and exposes the
// anchors they contain as media.LinkElement values.
//
//	client := askfm.NewClient(askfm.BaseURL, 30*time.Second, log)
//	page, err := client.FetchPage(ctx, "someone", 0)
//	if err != nil {
//	    // *errors.Error: network (no response) or status (non-200)
//	}
//	for _, link := range page.Links {
//	    res := media.Classify(link)
//	    ...
//	}
package askfm
