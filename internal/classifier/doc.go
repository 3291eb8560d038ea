// Package classifier implements the bag-of-words text classification pipeline:
// a TF-IDF vectoriser over word uni- and bigrams feeding a linear model
// trained by stochastic gradient descent on the logistic loss.
//
// Defaults: word n-grams up to 2, min_df 2, 2000 SGD epochs, seed 42.
//
// Pipelines are persisted with encoding/gob.
package classifier
