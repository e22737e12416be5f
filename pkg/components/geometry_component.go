package components

// GeometryComponent 表面几何信息（SurfaceGeometry）
// 只由 LayoutSystem 写入，GestureSystem 与 RippleSystem 只读
type GeometryComponent struct {
	Width  float64 // 测量宽度（像素，≥0）
	Height float64 // 测量高度（像素，≥0）
	Radius float64 // 涟漪最大尺寸：覆盖值 >0 时取覆盖值，否则为对角线长度
}
