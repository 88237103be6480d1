package asset

// TileMeshPath names the shared tile mesh; every spawned instance references it
const TileMeshPath = "frame.obj"

// TileGlyph is the default terminal glyph for a tile
const TileGlyph = '▣'

// TileColor is the shared tile material colour
var TileColor = [3]uint8{124, 144, 255}

// Title is shown at the top of the main menu
const Title = "Voxel Map Editor"
