package vector

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mcpbridge/tools"
)

// QdrantStore implements VectorStore backed by a Qdrant gRPC client.
type QdrantStore struct {
	client *qdrant.Client
}

func NewQdrantStore(client *qdrant.Client) *QdrantStore {
	return &QdrantStore{client: client}
}

func (s *QdrantStore) CreateCollection(ctx context.Context, name string, vectorSize uint64, distance string) error {
	dist, err := parseDistance(distance)
	if err != nil {
		return err
	}
	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     vectorSize,
			Distance: dist,
		}),
	})
	if err != nil {
		return mapQdrantError(err, fmt.Sprintf("failed to create collection %s", name))
	}
	return nil
}

func (s *QdrantStore) ListCollections(ctx context.Context) ([]string, error) {
	names, err := s.client.ListCollections(ctx)
	if err != nil {
		return nil, mapQdrantError(err, "failed to list collections")
	}
	return names, nil
}

func (s *QdrantStore) DeleteCollection(ctx context.Context, name string) error {
	if err := s.client.DeleteCollection(ctx, name); err != nil {
		return mapQdrantError(err, fmt.Sprintf("failed to delete collection %s", name))
	}
	return nil
}

func (s *QdrantStore) Upsert(ctx context.Context, collection string, points []Point) error {
	pts := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		pts = append(pts, &qdrant.PointStruct{
			Id:      pointID(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
			Payload: qdrant.NewValueMap(p.Payload),
		})
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         pts,
	})
	if err != nil {
		return mapQdrantError(err, fmt.Sprintf("failed to upsert %d points into %s", len(points), collection))
	}
	return nil
}

func (s *QdrantStore) Get(ctx context.Context, collection string, ids []string) ([]Point, error) {
	pointIDs := make([]*qdrant.PointId, 0, len(ids))
	for _, id := range ids {
		pointIDs = append(pointIDs, pointID(id))
	}

	retrieved, err := s.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: collection,
		Ids:            pointIDs,
		WithPayload:    qdrant.NewWithPayload(true),
		WithVectors:    qdrant.NewWithVectors(true),
	})
	if err != nil {
		return nil, mapQdrantError(err, fmt.Sprintf("failed to get points from %s", collection))
	}

	points := make([]Point, 0, len(retrieved))
	for _, rp := range retrieved {
		points = append(points, Point{
			ID:      idString(rp.Id),
			Vector:  vectorData(rp.Vectors),
			Payload: payloadMap(rp.Payload),
		})
	}
	return points, nil
}

func (s *QdrantStore) Query(ctx context.Context, collection string, vector []float32, limit uint64) ([]ScoredPoint, error) {
	hits, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, mapQdrantError(err, fmt.Sprintf("failed to query %s", collection))
	}

	scored := make([]ScoredPoint, 0, len(hits))
	for _, h := range hits {
		scored = append(scored, ScoredPoint{
			Point: Point{ID: idString(h.Id), Payload: payloadMap(h.Payload)},
			Score: h.Score,
		})
	}
	return scored, nil
}

func parseDistance(distance string) (qdrant.Distance, error) {
	switch strings.ToLower(distance) {
	case "", "cosine":
		return qdrant.Distance_Cosine, nil
	case "euclid", "euclidean":
		return qdrant.Distance_Euclid, nil
	case "dot":
		return qdrant.Distance_Dot, nil
	case "manhattan":
		return qdrant.Distance_Manhattan, nil
	}
	return qdrant.Distance_Cosine, tools.InvalidArguments("distance")
}

// pointID accepts either a numeric ID or a UUID string.
func pointID(id string) *qdrant.PointId {
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return qdrant.NewIDNum(n)
	}
	return qdrant.NewID(id)
}

func idString(id *qdrant.PointId) string {
	if id == nil {
		return ""
	}
	if uuid := id.GetUuid(); uuid != "" {
		return uuid
	}
	return strconv.FormatUint(id.GetNum(), 10)
}

func vectorData(v *qdrant.VectorsOutput) []float32 {
	if v == nil || v.GetVector() == nil {
		return nil
	}
	return v.GetVector().GetData()
}

func payloadMap(payload map[string]*qdrant.Value) map[string]any {
	if len(payload) == 0 {
		return nil
	}
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		out[k] = valueToAny(v)
	}
	return out
}

func valueToAny(v *qdrant.Value) any {
	switch k := v.GetKind().(type) {
	case *qdrant.Value_BoolValue:
		return k.BoolValue
	case *qdrant.Value_IntegerValue:
		return k.IntegerValue
	case *qdrant.Value_DoubleValue:
		return k.DoubleValue
	case *qdrant.Value_StringValue:
		return k.StringValue
	case *qdrant.Value_ListValue:
		items := make([]any, 0, len(k.ListValue.GetValues()))
		for _, item := range k.ListValue.GetValues() {
			items = append(items, valueToAny(item))
		}
		return items
	case *qdrant.Value_StructValue:
		return payloadMap(k.StructValue.GetFields())
	default:
		return nil
	}
}

// mapQdrantError folds gRPC status codes into the shared taxonomy.
func mapQdrantError(err error, msg string) error {
	if st, ok := status.FromError(err); ok && st.Code() == codes.NotFound {
		return tools.E(tools.KindCollectionNotFound, "%s: %v", msg, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
