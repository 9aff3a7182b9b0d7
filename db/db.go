package db

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/makamdex/constants"
	"github.com/jsphweid/makamdex/model"
	"github.com/pkg/errors"
)

type Config struct {
	Endpoint string
	Region   string
}

func NewClient(cfg Config) (dynamodbiface.DynamoDBAPI, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}
	return dynamodb.New(sess), nil
}

// GetWorkMetadatas looks up the metadata of each filename. Filenames without
// an item are missing from the result.
func GetWorkMetadatas(ctx context.Context, client dynamodbiface.DynamoDBAPI, table string, filenames []string) (map[string]model.WorkMetadata, error) {
	res := make(map[string]model.WorkMetadata)

	for start := 0; start < len(filenames); start += constants.MetadataBatchSize {
		end := start + constants.MetadataBatchSize
		if end > len(filenames) {
			end = len(filenames)
		}

		var keys []map[string]*dynamodb.AttributeValue
		for _, filename := range filenames[start:end] {
			keys = append(keys, map[string]*dynamodb.AttributeValue{
				"PK": {S: aws.String(filename)},
			})
		}

		requestItems := map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		}
		for len(requestItems) > 0 {
			out, err := client.BatchGetItemWithContext(ctx, &dynamodb.BatchGetItemInput{
				RequestItems: requestItems,
			})
			if err != nil {
				return nil, errors.Wrap(err, "error from DynamoDB")
			}
			for _, item := range out.Responses[table] {
				pk, m := parseItem(item)
				if pk != "" {
					res[pk] = m
				}
			}
			requestItems = out.UnprocessedKeys
		}
	}

	return res, nil
}

func parseItem(item map[string]*dynamodb.AttributeValue) (string, model.WorkMetadata) {
	str := func(name string) string {
		if v, ok := item[name]; ok && v.S != nil {
			return *v.S
		}
		return ""
	}

	var m model.WorkMetadata
	if v, ok := item["Year"]; ok && v.N != nil {
		year, err := strconv.ParseUint(*v.N, 10, 32)
		if err != nil {
			slog.Debug("skipping bad year", "value", *v.N, "err", err)
		} else {
			m.Year = uint(year)
		}
	}
	m.Makam = str("Makam")
	m.Form = str("Form")
	m.Usul = str("Usul")
	m.Name = str("Name")
	m.Composer = str("Composer")
	return str("PK"), m
}
