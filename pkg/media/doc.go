// Package media classifies answer links by the kind of media they carry.
//
// Classification works on the LinkElement capability interface rather than a
// concrete HTML tree, so the decision rules stay independent of the parser:
//
//	res := media.Classify(link)
//	switch res.Kind {
//	case media.KindImage, media.KindGif, media.KindUploadedVideo:
//	    // download res.URL
//	case media.KindYoutubeVideo:
//	    // detected only
//	case media.KindUnknown:
//	    // diagnostic
//	}
//
// Classify is pure: the same element always yields the same Result.
package media
