/*
Package querymodels defines the data structures used throughout QueryFlow.

Key Types:

QueryRequest:
One fully compiled DynamoDB Query request. Its Input() method produces the
wire-form dynamodb.QueryInput with every empty field omitted:

	req := &querymodels.QueryRequest{
	    TableName:              "orders",
	    KeyConditionExpression: "#_a0 = :_a0",
	    ExpressionAttributeNames: map[string]string{"#_a0": "UserId"},
	    ExpressionAttributeValues: map[string]types.AttributeValue{
	        ":_a0": &types.AttributeValueMemberS{Value: "u-17"},
	    },
	    Limit: aws.Int32(25),
	}
	input := req.Input()

Page:
One response page of a sequence, with per-page metadata (page number,
throttle retries absorbed, timestamp).

ExecOptions:
Configuration for the execution pipeline:

	opts := []ExecOption{
	    WithBackoff(querymodels.DefaultBackoff),
	    WithMaxThrottleRetries(10),
	    WithBufferSize(4),
	}

StreamResult:
Per-item results for channel-based consumption of a typed query.
*/
package querymodels
